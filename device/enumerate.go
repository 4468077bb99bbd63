package device

import "github.com/cockroachdb/errors"

// enumerate runs the two phase count-then-fill protocol shared by all
// Vulkan enumeration entry points: query the count with a nil
// destination, size the slice to exactly that count, query again to
// fill it. A zero count allocates nothing.
func enumerate[T any](query func(count *uint32, out []T) Result) ([]T, Result) {
	var count uint32
	if res := query(&count, nil); res != Success {
		return nil, res
	}

	if count == 0 {
		return nil, Success
	}

	out := make([]T, count)
	if res := query(&count, out); res != Success {
		return nil, res
	}
	return out[:count], Success
}

// PhysicalDevices enumerates the physical devices visible to an
// instance. Zero devices is a hard failure (ErrNoDevices); both query
// phases propagate driver errors verbatim.
func PhysicalDevices(api API, instance InstanceHandle) ([]PhysicalDeviceHandle, error) {
	devices, res := enumerate(func(count *uint32, out []PhysicalDeviceHandle) Result {
		return api.EnumeratePhysicalDevices(instance, count, out)
	})
	if res != Success {
		return nil, errors.Wrap(res, "EnumeratePhysicalDevices()")
	}
	if len(devices) == 0 {
		return nil, ErrNoDevices
	}
	return devices, nil
}

// QueueFamilies returns the queue family descriptors of one physical
// device. The native query reports no status, so the only outcome of
// interest is the descriptor slice; a device without queue families
// yields an empty slice.
func QueueFamilies(api API, dev PhysicalDeviceHandle) []QueueFamilyProperties {
	families, _ := enumerate(func(count *uint32, out []QueueFamilyProperties) Result {
		api.QueueFamilyProperties(dev, count, out)
		return Success
	})
	return families
}
