package device_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/vkslab/vktut/device"
)

func TestNewInstanceDescriptors(t *testing.T) {
	api := &mockAPI{}

	instance, err := device.NewInstance(api, "vulkan-tut00")
	if err != nil {
		t.Fatal(err)
	}
	if instance == nil {
		t.Fatal("no instance handle returned")
	}

	info := api.lastInstanceInfo
	if info == nil || info.ApplicationInfo == nil {
		t.Fatal("no application descriptor passed to the driver")
	}
	if info.ApplicationInfo.Name != "vulkan-tut00" {
		t.Errorf("application name = %q", info.ApplicationInfo.Name)
	}
	if info.ApplicationInfo.APIVersion != device.MakeVersion(1, 0, 0) {
		t.Errorf("API version = %s", info.ApplicationInfo.APIVersion)
	}
	if len(info.Layers) != 0 || len(info.Extensions) != 0 {
		t.Errorf("layers/extensions requested: %v %v", info.Layers, info.Extensions)
	}
}

func TestNewInstanceError(t *testing.T) {
	api := &mockAPI{instanceResult: device.ErrorIncompatibleDriver}

	instance, err := device.NewInstance(api, "vulkan-tut00")
	if !errors.Is(err, device.ErrorIncompatibleDriver) {
		t.Errorf("got %v, want ErrorIncompatibleDriver", err)
	}
	if instance != nil {
		t.Error("got an instance handle on failure")
	}
}

func TestTeardownNothingAcquired(t *testing.T) {
	api := &mockAPI{}

	device.Teardown(api, nil, nil)
	if len(api.destroyed) != 0 {
		t.Errorf("destroy calls issued with nothing acquired: %v", api.destroyed)
	}
}

func TestTeardownReverseOrder(t *testing.T) {
	api := &mockAPI{}

	instance, err := device.NewInstance(api, "vulkan-tut03")
	if err != nil {
		t.Fatal(err)
	}
	logical, err := device.NewLogicalDevice(api, &mockDevice{})
	if err != nil {
		t.Fatal(err)
	}

	device.Teardown(api, logical, instance)
	if len(api.destroyed) != 2 || api.destroyed[0] != "device" || api.destroyed[1] != "instance" {
		t.Errorf("destroy order = %v, want [device instance]", api.destroyed)
	}
}

func TestTeardownInstanceOnly(t *testing.T) {
	api := &mockAPI{}

	instance, err := device.NewInstance(api, "vulkan-tut00")
	if err != nil {
		t.Fatal(err)
	}

	device.Teardown(api, nil, instance)
	if len(api.destroyed) != 1 || api.destroyed[0] != "instance" {
		t.Errorf("destroy calls = %v, want [instance]", api.destroyed)
	}
}
