package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Alia5/cuamap/internal/evdev"
	"github.com/Alia5/cuamap/key"
)

// Devices lists input device nodes so one can be picked for --device or
// --device-name.
type Devices struct{}

var listDevices = evdev.List

func (d *Devices) Run() error {
	return d.print(os.Stdout)
}

func (d *Devices) print(w io.Writer) error {
	devs, err := listDevices()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAME\tPHYS")
	for _, dev := range devs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", dev.Path, dev.Name, dev.Phys)
	}
	return tw.Flush()
}

// Keys lists the key names accepted by key-valued flags.
type Keys struct{}

func (k *Keys) Run() error {
	return k.print(os.Stdout)
}

func (k *Keys) print(w io.Writer) error {
	for _, n := range key.Names() {
		c, _ := key.Parse(n)
		if _, err := fmt.Fprintf(w, "%-18s %d\n", n, uint16(c)); err != nil {
			return err
		}
	}
	return nil
}
