package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gobuffalo/envy"
	log "github.com/sirupsen/logrus"
	"github.com/xlab/tablewriter"

	"github.com/vkslab/vktut/device"
)

// vkinfo dumps the enumerated devices and their queue families,
// either as a table or as JSON.
//
// Configuration comes from the environment:
//
//	VKINFO_FORMAT    "table" (default) or "json"
//	VKINFO_APP_NAME  application name reported to the driver
func run() error {
	format := envy.Get("VKINFO_FORMAT", "table")
	appName := envy.Get("VKINFO_APP_NAME", "vkinfo")

	api, err := device.NewAPI()
	if err != nil {
		return err
	}

	instance, err := device.NewInstance(api, appName)
	if err != nil {
		return err
	}
	defer device.Teardown(api, nil, instance)

	devices, err := device.PhysicalDevices(api, instance)
	if err != nil {
		return err
	}

	infos := device.CollectDeviceInfo(api, devices)

	switch format {
	case "json":
		out, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", out)
	default:
		for _, info := range infos {
			fmt.Println(renderTable(info))
		}
	}
	return nil
}

func renderTable(info device.PhysicalDeviceInfo) string {
	table := tablewriter.CreateTable()
	table.UTF8Box()
	table.AddTitle(info.Name)
	table.AddRow("Device Type", fmt.Sprintf("%d", info.Type))
	table.AddRow("API Version", info.APIVersion)
	table.AddRow("Driver Version", fmt.Sprintf("%d", info.DriverVersion))
	table.AddRow("Queue Families", fmt.Sprintf("%d", len(info.QueueFamilies)))
	for _, family := range info.QueueFamilies {
		table.AddRow(
			fmt.Sprintf("Family %d", family.Index),
			fmt.Sprintf("%d queue(s): %s", family.QueueCount, strings.Join(family.Capabilities, ", ")))
	}
	return table.Render()
}

func main() {
	if err := run(); err != nil {
		log.Error(err)
		os.Exit(-1)
	}
}
