// Package log provides simple levelled logging for newsletter-lists.
//
// Levels are DEBUG (verbose mode only), INFO, WARN and ERROR. Messages carry
// a coloured prefix; errors are written to the error writer, everything else
// to the standard writer.
//
// Basic logging:
//
//	log.Infof("Loaded %d newsletter lists", n)
//	log.Errorf("Failed to resolve list: %v", err)
//
// Redirecting output, e.g. from a command or a test:
//
//	log.SetOutput(&out, &errOut)
//	log.SetForceStdErr(true) // keep stdout machine-readable
//
// The package uses global state guarded by a mutex.
package log
