package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wxradar/nexrad2/archive2"
	"github.com/wxradar/nexrad2/cloudsource"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "nexrad-inspect",
	Short: "nexrad-inspect decodes and serves NEXRAD Level II Archive II volumes.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("failed to parse log level: %s", err)
		}
		logrus.SetLevel(lvl)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <path>...",
	Short: "decode one or more Archive II files and print a per-message-type histogram",
	Args:  cobra.MinimumNArgs(1),
	Run:   runDecode,
}

var serveAddr string
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve decoded volumes fetched from the public NEXRAD S3 buckets",
	Run:   runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level: trace, debug, info, warn, error")
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "address to listen on")
	rootCmd.AddCommand(decodeCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runDecode(cmd *cobra.Command, args []string) {
	bar := pb.StartNew(len(args))
	defer bar.Finish()

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			logrus.Errorf("reading %s: %v", path, err)
			bar.Increment()
			continue
		}

		messages, diagnostics, err := archive2.DecodeMessages(data)
		if err != nil {
			logrus.Errorf("decoding %s: %v", path, err)
			bar.Increment()
			continue
		}

		counts := make(map[archive2.MessageKind]int)
		for _, m := range messages {
			counts[m.Kind]++
		}

		fmt.Printf("%s: %d messages, %d diagnostics\n", path, len(messages), len(diagnostics))
		for kind, n := range counts {
			fmt.Printf("  %-24s %d\n", kind, n)
		}

		bar.Increment()
	}
}

func runServe(cmd *cobra.Command, args []string) {
	fetcher, err := cloudsource.NewFetcher("us-east-1")
	if err != nil {
		logrus.Fatal(err)
	}

	r := mux.NewRouter()
	r.HandleFunc("/volumes/{bucket}/{key:.*}", volumeHandler(fetcher))

	logrus.Infof("listening on %s", serveAddr)
	logrus.Fatal(http.ListenAndServe(serveAddr, r))
}
