package device_test

import (
	"github.com/vkslab/vktut/device"
)

// mockDevice scripts one physical device for the mock driver
type mockDevice struct {
	props    device.PhysicalDeviceProperties
	families []device.QueueFamilyProperties
}

type mockInstance struct{}
type mockLogicalDevice struct{}

// mockAPI is a scripted stand-in for the native driver. Results
// default to Success, failures are injected per call site.
type mockAPI struct {
	devices []mockDevice

	instanceResult device.Result
	countResult    device.Result
	fillResult     device.Result
	deviceResult   device.Result

	countCalls int
	fillCalls  int

	lastInstanceInfo *device.InstanceCreateInfo
	lastDeviceInfo   *device.DeviceCreateInfo

	destroyed []string
}

func (m *mockAPI) CreateInstance(info *device.InstanceCreateInfo, instance *device.InstanceHandle) device.Result {
	m.lastInstanceInfo = info
	if m.instanceResult != device.Success {
		return m.instanceResult
	}
	*instance = &mockInstance{}
	return device.Success
}

func (m *mockAPI) DestroyInstance(instance device.InstanceHandle) {
	m.destroyed = append(m.destroyed, "instance")
}

func (m *mockAPI) EnumeratePhysicalDevices(instance device.InstanceHandle, count *uint32, devices []device.PhysicalDeviceHandle) device.Result {
	if devices == nil {
		m.countCalls++
		if m.countResult != device.Success {
			return m.countResult
		}
		*count = uint32(len(m.devices))
		return device.Success
	}

	m.fillCalls++
	if m.fillResult != device.Success {
		return m.fillResult
	}
	for i := range devices {
		devices[i] = &m.devices[i]
	}
	*count = uint32(len(m.devices))
	return device.Success
}

func (m *mockAPI) PhysicalDeviceProperties(dev device.PhysicalDeviceHandle) device.PhysicalDeviceProperties {
	return dev.(*mockDevice).props
}

func (m *mockAPI) QueueFamilyProperties(dev device.PhysicalDeviceHandle, count *uint32, properties []device.QueueFamilyProperties) {
	families := dev.(*mockDevice).families
	*count = uint32(len(families))
	if properties != nil {
		copy(properties, families)
	}
}

func (m *mockAPI) CreateDevice(dev device.PhysicalDeviceHandle, info *device.DeviceCreateInfo, out *device.DeviceHandle) device.Result {
	m.lastDeviceInfo = info
	if m.deviceResult != device.Success {
		return m.deviceResult
	}
	*out = &mockLogicalDevice{}
	return device.Success
}

func (m *mockAPI) DestroyDevice(dev device.DeviceHandle) {
	m.destroyed = append(m.destroyed, "device")
}
