package device

import "github.com/cockroachdb/errors"

// ErrNoDevices is returned when the driver reports zero physical
// devices. The instance is still valid; callers decide whether to
// tear down or keep probing.
var ErrNoDevices = errors.New("no device with Vulkan support present")

// NewInstance creates an instance for the named application. Neither
// layers nor extensions are requested. The returned handle must be
// released with Teardown or api.DestroyInstance.
func NewInstance(api API, appName string) (InstanceHandle, error) {
	info := &InstanceCreateInfo{
		ApplicationInfo: &ApplicationInfo{
			Name:          appName,
			Version:       MakeVersion(1, 0, 0),
			EngineVersion: MakeVersion(1, 0, 0),
			APIVersion:    MakeVersion(1, 0, 0),
		},
	}

	var instance InstanceHandle
	if res := api.CreateInstance(info, &instance); res != Success {
		return nil, errors.Wrap(res, "CreateInstance()")
	}
	return instance, nil
}

// Teardown releases everything the tutorials acquire, in reverse
// order of acquisition: logical device first, instance last. Safe to
// call with partially initialized state, nil handles are skipped.
func Teardown(api API, dev DeviceHandle, instance InstanceHandle) {
	if dev != nil {
		api.DestroyDevice(dev)
	}
	if instance != nil {
		api.DestroyInstance(instance)
	}
}
