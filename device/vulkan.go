package device

import (
	"fmt"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// NewAPI loads the Vulkan shared library through the default loader
// and returns the production API implementation. Must be called once
// before any other call into the package.
func NewAPI() (API, error) {
	if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		return nil, errors.Wrap(err, "vk.SetDefaultGetInstanceProcAddr()")
	}
	if err := vk.Init(); err != nil {
		return nil, errors.Wrap(err, "vk.Init()")
	}
	return vulkanAPI{}, nil
}

// vulkanAPI is the API implementation backed by the native driver
type vulkanAPI struct{}

func (vulkanAPI) CreateInstance(info *InstanceCreateInfo, instance *InstanceHandle) Result {
	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString(info.ApplicationInfo.Name),
		PEngineName:        safeString(info.ApplicationInfo.EngineName),
		ApplicationVersion: uint32(info.ApplicationInfo.Version),
		EngineVersion:      uint32(info.ApplicationInfo.EngineVersion),
		ApiVersion:         uint32(info.ApplicationInfo.APIVersion),
	}

	layers := safeStrings(info.Layers)
	extensions := safeStrings(info.Extensions)
	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        &appInfo,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
	}

	var inst vk.Instance
	if res := vk.CreateInstance(&createInfo, nil, &inst); res != vk.Success {
		return Result(res)
	}
	vk.InitInstance(inst)

	*instance = inst
	return Success
}

func (vulkanAPI) DestroyInstance(instance InstanceHandle) {
	vk.DestroyInstance(instance.(vk.Instance), nil)
}

func (vulkanAPI) EnumeratePhysicalDevices(instance InstanceHandle, count *uint32, devices []PhysicalDeviceHandle) Result {
	inst := instance.(vk.Instance)

	if devices == nil {
		return Result(vk.EnumeratePhysicalDevices(inst, count, nil))
	}

	native := make([]vk.PhysicalDevice, len(devices))
	res := vk.EnumeratePhysicalDevices(inst, count, native)
	for i := range devices {
		devices[i] = native[i]
	}
	return Result(res)
}

func (vulkanAPI) PhysicalDeviceProperties(device PhysicalDeviceHandle) PhysicalDeviceProperties {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(device.(vk.PhysicalDevice), &props)
	props.Deref()

	return PhysicalDeviceProperties{
		APIVersion:    Version(props.ApiVersion),
		DriverVersion: props.DriverVersion,
		DeviceName:    vk.ToString(props.DeviceName[:]),
		DeviceType:    int32(props.DeviceType),
	}
}

func (vulkanAPI) QueueFamilyProperties(device PhysicalDeviceHandle, count *uint32, properties []QueueFamilyProperties) {
	dev := device.(vk.PhysicalDevice)

	if properties == nil {
		vk.GetPhysicalDeviceQueueFamilyProperties(dev, count, nil)
		return
	}

	native := make([]vk.QueueFamilyProperties, len(properties))
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, count, native)
	for i := range properties {
		native[i].Deref()
		native[i].MinImageTransferGranularity.Deref()
		properties[i] = QueueFamilyProperties{
			Flags:      QueueFlags(native[i].QueueFlags),
			QueueCount: native[i].QueueCount,
			MinImageTransferGranularity: Extent3D{
				Width:  native[i].MinImageTransferGranularity.Width,
				Height: native[i].MinImageTransferGranularity.Height,
				Depth:  native[i].MinImageTransferGranularity.Depth,
			},
		}
	}
}

func (vulkanAPI) CreateDevice(device PhysicalDeviceHandle, info *DeviceCreateInfo, out *DeviceHandle) Result {
	queueInfos := make([]vk.DeviceQueueCreateInfo, len(info.QueueCreateInfos))
	for i, q := range info.QueueCreateInfos {
		queueInfos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: q.QueueFamilyIndex,
			QueueCount:       uint32(len(q.QueuePriorities)),
			PQueuePriorities: q.QueuePriorities,
		}
	}

	layers := safeStrings(info.Layers)
	extensions := safeStrings(info.Extensions)
	createInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     layers,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: extensions,
	}

	var dev vk.Device
	if res := vk.CreateDevice(device.(vk.PhysicalDevice), &createInfo, nil, &dev); res != vk.Success {
		return Result(res)
	}

	*out = dev
	return Success
}

func (vulkanAPI) DestroyDevice(device DeviceHandle) {
	vk.DestroyDevice(device.(vk.Device), nil)
}

func safeString(s string) string {
	return fmt.Sprintf("%s\x00", s)
}

func safeStrings(sgs []string) []string {
	safe := []string{}
	for _, s := range sgs {
		safe = append(safe, fmt.Sprintf("%s\x00", s))
	}
	return safe
}
