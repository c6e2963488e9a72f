package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/wxradar/nexrad2/archive2"
	"github.com/wxradar/nexrad2/cloudsource"
)

type volumeSummary struct {
	ICAO            string               `json:"icao"`
	Filename        string               `json:"filename"`
	MessageCounts   map[string]int       `json:"message_counts"`
	DiagnosticCount int                  `json:"diagnostic_count"`
	Diagnostics     []archive2.Diagnostic `json:"diagnostics,omitempty"`
}

// volumeHandler fetches bucket/key from S3, decodes it, and responds with a
// JSON summary of the decoded volume.
func volumeHandler(fetcher *cloudsource.Fetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		bucket, key := vars["bucket"], vars["key"]

		data, err := fetcher.FetchObject(r.Context(), bucket, key)
		if err != nil {
			logrus.Error(err)
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		hdr, err := archive2.NewVolumeFile(data).Header()
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		messages, diagnostics, err := archive2.DecodeMessages(data)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		counts := make(map[string]int)
		for _, m := range messages {
			counts[m.Kind.String()]++
		}

		summary := volumeSummary{
			ICAO:            hdr.ICAO,
			Filename:        hdr.Filename(),
			MessageCounts:   counts,
			DiagnosticCount: len(diagnostics),
		}
		if r.URL.Query().Get("diagnostics") == "1" {
			summary.Diagnostics = diagnostics
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logrus.Error(err)
		}
	}
}
