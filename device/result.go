package device

import "fmt"

// Result is a native API status code. The zero value is Success, every
// other value in the closed set below is a failure reported by the
// driver and propagated verbatim to callers.
type Result int32

// Status codes, numeric values matching VkResult
const (
	Success                   Result = 0
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorLayerNotPresent      Result = -6
	ErrorExtensionNotPresent  Result = -7
	ErrorIncompatibleDriver   Result = -9
)

func (r Result) String() string {
	switch r {
	case Success:
		return "VK_SUCCESS"
	case ErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case ErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case ErrorInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case ErrorLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case ErrorExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case ErrorIncompatibleDriver:
		return "VK_ERROR_INCOMPATIBLE_DRIVER"
	}
	return fmt.Sprintf("vulkan error %d", int32(r))
}

// Error makes failure Results usable as error values, keeping the raw
// code visible in the message like the native tutorials print it.
func (r Result) Error() string {
	return fmt.Sprintf("%s (%d)", r.String(), int32(r))
}
