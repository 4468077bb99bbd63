package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vkslab/vktut/device"
)

// Tutorial 02: enumerate the queue families of every available
// physical device and report their capabilities.

func run() error {
	api, err := device.NewAPI()
	if err != nil {
		return err
	}

	instance, err := device.NewInstance(api, "vulkan-tut02")
	if err != nil {
		return err
	}
	defer device.Teardown(api, nil, instance)

	devices, err := device.PhysicalDevices(api, instance)
	if err != nil {
		return err
	}

	device.WriteQueueFamilyInfo(os.Stdout, api, devices)
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(-1)
	}
	fmt.Println(" Cleanup done.")
}
