// Command gnssnavcli replays a newline-delimited JSON fixture of ingest
// records through a dispatch.Dispatcher and prints the resulting snapshot.
// It is the Go analogue of the original project's
// test_ubx_nav_msg_parser.py, which drove the same decoding pipeline from a
// recorded .ubx file; decoding a live receiver stream is out of scope here
// (spec §1), so this reads pre-extracted ingest records instead of raw
// receiver bytes.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Nerolf05/gnssnav/pkg/gnssnav/dispatch"
	"github.com/Nerolf05/gnssnav/pkg/gnssnav/identify"
)

// ingestRecord is the on-disk JSON shape of one fixture line.
type ingestRecord struct {
	GnssID      int      `json:"gnss_id"`
	SvID        int      `json:"sv_id"`
	SignalID    int      `json:"signal_id"`
	DataWords   []uint32 `json:"data_words"`
	FreqID      int      `json:"freq_id"`
	FrameNumber int      `json:"frame_number"`
}

func main() {
	fixturePath := flag.String("fixture", "", "path to a newline-delimited JSON ingest fixture")
	logLevel := flag.String("log-level", "info", "logrus level (debug, info, warn, error)")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(level)
	}

	if *fixturePath == "" {
		logger.Fatal("missing required -fixture flag")
	}

	f, err := os.Open(*fixturePath)
	if err != nil {
		logger.WithError(err).Fatal("failed to open fixture")
	}
	defer f.Close()

	d := dispatch.New(logger)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec ingestRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			logger.WithError(err).WithField("line", lineNo).Warn("skipping malformed fixture line")
			continue
		}
		in := dispatch.Ingest{
			GnssID:      identify.GnssID(rec.GnssID),
			SvID:        rec.SvID,
			SignalID:    rec.SignalID,
			DataWords:   rec.DataWords,
			FreqID:      rec.FreqID,
			FrameNumber: rec.FrameNumber,
		}
		if err := d.Ingest(in); err != nil {
			logger.WithError(err).WithField("line", lineNo).Warn("ingest failed")
		}
	}
	if err := scanner.Err(); err != nil {
		logger.WithError(err).Fatal("error reading fixture")
	}

	for _, rec := range d.Snapshot() {
		fmt.Printf("gnss=%d sv=%d layout=%s fields=%v\n", rec.GnssID, rec.SvID, rec.LayoutKey, rec.RawFields)
		if rec.Ephemeris != nil {
			fmt.Printf("  ephemeris=%+v\n", rec.Ephemeris)
		}
		for _, a := range rec.Almanac {
			fmt.Printf("  almanac=%+v\n", a)
		}
	}
}
