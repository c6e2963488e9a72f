package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/wxradar/nexrad2/archive2"
)

var cli struct {
	Args struct {
		Filename string
	} `positional-args:"yes" required:"yes"`
	LogLevel         string `short:"l" long:"log-level" description:"logging level" choice:"error" choice:"info" choice:"debug" choice:"trace" default:"info"`
	ShowVolumeHeader bool   `long:"show-volume-header" description:"dumps out the contents of the Volume Header"`
	ShowDiagnostics  bool   `long:"show-diagnostics" description:"dumps out every recoverable decode diagnostic"`
}

func main() {
	_, err := flags.Parse(&cli)
	if err != nil {
		os.Exit(1)
	}

	errorLevels := map[string]logrus.Level{
		"error": logrus.ErrorLevel,
		"info":  logrus.InfoLevel,
		"debug": logrus.DebugLevel,
		"trace": logrus.TraceLevel,
	}
	logrus.SetLevel(errorLevels[cli.LogLevel])

	logrus.Info(color.CyanString("decoding %s", cli.Args.Filename))

	data, err := os.ReadFile(cli.Args.Filename)
	if err != nil {
		logrus.Fatal(color.RedString("reading %s: %v", cli.Args.Filename, err))
	}

	if cli.ShowVolumeHeader {
		hdr, err := archive2.NewVolumeFile(data).Header()
		if err != nil {
			logrus.Fatal(color.RedString("decoding volume header: %v", err))
		}
		fmt.Printf("volume header: filename=%s icao=%s date=%s\n", hdr.Filename(), hdr.ICAO, hdr.Date())
	}

	messages, diagnostics, err := archive2.DecodeMessages(data)
	if err != nil {
		logrus.Fatal(color.RedString("decoding %s: %v", cli.Args.Filename, err))
	}

	counts := make(map[archive2.MessageKind]int)
	for _, m := range messages {
		counts[m.Kind]++
	}

	fmt.Printf("decoded %d messages from %s:\n", len(messages), cli.Args.Filename)
	for kind, n := range counts {
		fmt.Printf("  %-24s %d\n", kind, n)
	}

	if len(diagnostics) > 0 {
		fmt.Println(color.YellowString("%d diagnostics", len(diagnostics)))
		if cli.ShowDiagnostics {
			for _, d := range diagnostics {
				fmt.Println(" ", d.String())
			}
		}
	}
}
