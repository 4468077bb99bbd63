package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vkslab/vktut/device"
)

// Tutorial 01: enumerate the physical devices visible to an instance
// and report their general properties.

func run() error {
	api, err := device.NewAPI()
	if err != nil {
		return err
	}

	instance, err := device.NewInstance(api, "vulkan-tut01")
	if err != nil {
		return err
	}
	defer device.Teardown(api, nil, instance)

	devices, err := device.PhysicalDevices(api, instance)
	if err != nil {
		return err
	}

	device.WriteDeviceInfo(os.Stdout, api, devices)
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(-1)
	}
	fmt.Println(" Cleanup done.")
}
