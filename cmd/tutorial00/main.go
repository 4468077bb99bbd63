package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vkslab/vktut/device"
)

// Tutorial 00: create a Vulkan instance and destroy it again.

func run() error {
	api, err := device.NewAPI()
	if err != nil {
		return err
	}

	instance, err := device.NewInstance(api, "vulkan-tut00")
	if err != nil {
		return err
	}

	fmt.Println("Instance created successfully")

	device.Teardown(api, nil, instance)

	fmt.Println("Instance destroyed")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(-1)
	}
}
