// SPDX-License-Identifier: MIT

// Command smooth reads a YAML smoothing job, fits the requested models to
// its points and writes the densely sampled curves as CSV.
//
// Usage:
//
//	smooth -job job.yaml [-out table.csv]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sgostarter/i/l"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, l.NewConsoleLoggerWrapper()))
}

// realMain returns the process exit code: 0 on success, 1 on any failure.
func realMain(args []string, stdout io.Writer, logger l.Wrapper) int {
	logger = logger.WithFields(l.StringField(l.ClsKey, "smooth"))

	fs := flag.NewFlagSet("smooth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	jobPath := fs.String("job", "job.yaml", "path to the YAML job file")
	outPath := fs.String("out", "", "CSV output path; overrides the job's output, - for stdout")
	if err := fs.Parse(args); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("bad arguments")
		return 1
	}

	job, err := LoadJob(*jobPath)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("job", *jobPath)).Error("load job failed")
		return 1
	}
	if *outPath != "" {
		job.Output = *outPath
	}

	// the table is buffered so a failed job never touches an existing output
	var buf bytes.Buffer
	if err = Run(job, &buf, logger); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("smoothing failed")
		return 1
	}

	if job.Output == "" || job.Output == "-" {
		if _, err = stdout.Write(buf.Bytes()); err != nil {
			logger.WithFields(l.ErrorField(err)).Error("write stdout failed")
			return 1
		}

		return 0
	}
	if err = writeFileAtomic(job.Output, buf.Bytes()); err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("output", job.Output)).Error("write output failed")
		return 1
	}

	return 0
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// over path once the data is on disk.
func writeFileAtomic(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = f.Chmod(0o644); err != nil {
		_ = f.Close()
		return err
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}

	return os.Rename(tmp, path)
}
