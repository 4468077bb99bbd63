package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vkslab/vktut/device"
)

// Tutorial 03: create a logical device on the first physical device,
// requesting one queue from queue family 0 at priority 1.0.

func run() error {
	api, err := device.NewAPI()
	if err != nil {
		return err
	}

	instance, err := device.NewInstance(api, "vulkan-tut03")
	if err != nil {
		return err
	}
	fmt.Println(" Instance created.")

	var logical device.DeviceHandle
	defer func() {
		device.Teardown(api, logical, instance)
	}()

	devices, err := device.PhysicalDevices(api, instance)
	if err != nil {
		return err
	}
	fmt.Println(" List of physical devices, obtained.")

	logical, err = device.NewLogicalDevice(api, devices[0])
	if err != nil {
		return err
	}
	fmt.Println(" Logical device created.")

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(-1)
	}
	fmt.Println(" Cleanup done.")
}
