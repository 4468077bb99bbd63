package device

// InstanceHandle is an opaque connection to the native Vulkan API.
// One is created per run and destroyed once at teardown.
type InstanceHandle interface{}

// PhysicalDeviceHandle refers to one GPU or compute device visible to
// an instance. Handles are references, never owned resources.
type PhysicalDeviceHandle interface{}

// DeviceHandle is a live logical device created from one physical device.
type DeviceHandle interface{}

// Extent3D describes a three dimensional granularity in texels
type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

// QueueFlags is a bitmask of operations a queue family supports.
// A family may advertise several capabilities at once.
type QueueFlags uint32

// Queue capabilities, bit values matching VkQueueFlagBits
const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// PhysicalDeviceProperties holds the general properties of one
// physical device as reported by the driver
type PhysicalDeviceProperties struct {
	APIVersion    Version
	DriverVersion uint32
	DeviceName    string
	DeviceType    int32
}

// QueueFamilyProperties describes one queue family of a physical device
type QueueFamilyProperties struct {
	Flags                       QueueFlags
	QueueCount                  uint32
	MinImageTransferGranularity Extent3D
}

// ApplicationInfo identifies the application to the driver
type ApplicationInfo struct {
	Name          string
	EngineName    string
	Version       Version
	EngineVersion Version
	APIVersion    Version
}

// InstanceCreateInfo describes the instance to be created
type InstanceCreateInfo struct {
	ApplicationInfo *ApplicationInfo
	Layers          []string
	Extensions      []string
}

// DeviceQueueCreateInfo requests queues from one queue family.
// One queue is requested per entry in QueuePriorities.
type DeviceQueueCreateInfo struct {
	QueueFamilyIndex uint32
	QueuePriorities  []float32
}

// DeviceCreateInfo describes the logical device to be created
type DeviceCreateInfo struct {
	QueueCreateInfos []DeviceQueueCreateInfo
	Layers           []string
	Extensions       []string
}

// API is the boundary to the native Vulkan implementation. Call shapes
// mirror the C API so that the count-then-fill enumeration protocol is
// carried out by the callers in this package. Every call blocks until
// the driver responds.
type API interface {
	// CreateInstance allocates one instance inside the driver
	CreateInstance(info *InstanceCreateInfo, instance *InstanceHandle) Result

	// DestroyInstance releases an instance. A nil handle is not accepted.
	DestroyInstance(instance InstanceHandle)

	// EnumeratePhysicalDevices writes the device count through count.
	// With a nil slice only the count is written, otherwise up to
	// len(devices) handles are filled in.
	EnumeratePhysicalDevices(instance InstanceHandle, count *uint32, devices []PhysicalDeviceHandle) Result

	// PhysicalDeviceProperties reports the general properties of a device
	PhysicalDeviceProperties(device PhysicalDeviceHandle) PhysicalDeviceProperties

	// QueueFamilyProperties follows the same two phase protocol as
	// EnumeratePhysicalDevices. The native call reports no status.
	QueueFamilyProperties(device PhysicalDeviceHandle, count *uint32, properties []QueueFamilyProperties)

	// CreateDevice creates a logical device on a physical device
	CreateDevice(device PhysicalDeviceHandle, info *DeviceCreateInfo, out *DeviceHandle) Result

	// DestroyDevice releases a logical device. A nil handle is not accepted.
	DestroyDevice(device DeviceHandle)
}
