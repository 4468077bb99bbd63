package device

import (
	"fmt"
	"io"
)

// WriteDeviceInfo writes a human readable report of every enumerated
// device: decoded API version, raw driver version, name, and the
// device type code exactly as the driver reports it. Purely
// observational, nothing is returned.
func WriteDeviceInfo(w io.Writer, api API, devices []PhysicalDeviceHandle) {
	fmt.Fprintf(w, " %d physical device(s) found:\n", len(devices))

	for _, dev := range devices {
		props := api.PhysicalDeviceProperties(dev)

		fmt.Fprintf(w, "\tAPI Version: %d.%d.%d\n",
			props.APIVersion.Major(), props.APIVersion.Minor(), props.APIVersion.Patch())
		fmt.Fprintf(w, "\tDriver Version: %d\n", props.DriverVersion)
		fmt.Fprintf(w, "\tDevice Name: %s\n", props.DeviceName)
		fmt.Fprintf(w, "\tDevice Type: %d\n", props.DeviceType)
		fmt.Fprintf(w, "\n")
	}
}

// WriteQueueFamilyInfo writes a per device report of every queue
// family: queue count, minimum image transfer granularity and one
// line per advertised capability. Capabilities are reported
// independently since a family may advertise several at once.
func WriteQueueFamilyInfo(w io.Writer, api API, devices []PhysicalDeviceHandle) {
	for _, dev := range devices {
		props := api.PhysicalDeviceProperties(dev)
		fmt.Fprintf(w, " Device Name: %s (Type: %d)\n", props.DeviceName, props.DeviceType)

		families := QueueFamilies(api, dev)
		fmt.Fprintf(w, " Device Queue Family Count: %d\n", len(families))

		for idx, family := range families {
			// The family index is what later Vulkan calls refer to
			fmt.Fprintf(w, "\t Index: %d\n", idx)
			fmt.Fprintf(w, "\t Count of Queues: %d\n", family.QueueCount)
			fmt.Fprintf(w, "\t Minimum Image Transfer Granularity (Width Height Depth): (%d %d %d)\n",
				family.MinImageTransferGranularity.Width,
				family.MinImageTransferGranularity.Height,
				family.MinImageTransferGranularity.Depth)

			fmt.Fprintf(w, "\t Supported operations on this queue:\n")
			if family.Flags&QueueGraphics != 0 {
				fmt.Fprintf(w, "\t\t Graphics\n")
			}
			if family.Flags&QueueCompute != 0 {
				fmt.Fprintf(w, "\t\t Compute\n")
			}
			if family.Flags&QueueTransfer != 0 {
				fmt.Fprintf(w, "\t\t Transfer\n")
			}
			if family.Flags&QueueSparseBinding != 0 {
				fmt.Fprintf(w, "\t\t Sparse Binding\n")
			}
			fmt.Fprintf(w, "\n")
		}
	}
}

// QueueFamilyInfo is the serializable form of one queue family
type QueueFamilyInfo struct {
	Index          int      `json:"index"`
	QueueCount     uint32   `json:"queueCount"`
	Capabilities   []string `json:"capabilities"`
	MinGranularity Extent3D `json:"minImageTransferGranularity"`
}

// PhysicalDeviceInfo is the serializable form of one enumerated device
type PhysicalDeviceInfo struct {
	Name          string            `json:"name"`
	Type          int32             `json:"type"`
	APIVersion    string            `json:"apiVersion"`
	DriverVersion uint32            `json:"driverVersion"`
	QueueFamilies []QueueFamilyInfo `json:"queueFamilies"`
}

// Capabilities lists the set capability bits by name, in bit order
func (f QueueFamilyProperties) Capabilities() []string {
	var caps []string
	if f.Flags&QueueGraphics != 0 {
		caps = append(caps, "graphics")
	}
	if f.Flags&QueueCompute != 0 {
		caps = append(caps, "compute")
	}
	if f.Flags&QueueTransfer != 0 {
		caps = append(caps, "transfer")
	}
	if f.Flags&QueueSparseBinding != 0 {
		caps = append(caps, "sparseBinding")
	}
	return caps
}

// CollectDeviceInfo gathers the properties and queue families of every
// device into serializable records, for JSON or table reports.
func CollectDeviceInfo(api API, devices []PhysicalDeviceHandle) []PhysicalDeviceInfo {
	infos := make([]PhysicalDeviceInfo, len(devices))
	for i, dev := range devices {
		props := api.PhysicalDeviceProperties(dev)
		infos[i] = PhysicalDeviceInfo{
			Name:          props.DeviceName,
			Type:          props.DeviceType,
			APIVersion:    props.APIVersion.String(),
			DriverVersion: props.DriverVersion,
		}
		for idx, family := range QueueFamilies(api, dev) {
			infos[i].QueueFamilies = append(infos[i].QueueFamilies, QueueFamilyInfo{
				Index:          idx,
				QueueCount:     family.QueueCount,
				Capabilities:   family.Capabilities(),
				MinGranularity: family.MinImageTransferGranularity,
			})
		}
	}
	return infos
}
