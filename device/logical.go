package device

import "github.com/cockroachdb/errors"

// NewLogicalDevice creates a logical device with exactly one queue
// from queue family index 0 at priority 1.0, no layers and no
// extensions. The family index is not validated against the device's
// queue families, mirroring the original tutorial behavior.
func NewLogicalDevice(api API, dev PhysicalDeviceHandle) (DeviceHandle, error) {
	info := &DeviceCreateInfo{
		QueueCreateInfos: []DeviceQueueCreateInfo{{
			QueueFamilyIndex: 0,
			QueuePriorities:  []float32{1.0},
		}},
	}

	var out DeviceHandle
	if res := api.CreateDevice(dev, info, &out); res != Success {
		return nil, errors.Wrap(res, "CreateDevice()")
	}
	return out, nil
}
