package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/imgprep/internal/imaging"
)

var fingerprintCommand = &cobra.Command{
	Use:   "fingerprint PATH...",
	Short: "Print the XXH64 fingerprint of each file",
	Long: `Print the XXH64 fingerprint of each file as "<hex>  <path>".

Files are hashed concurrently, at most --jobs at a time; output keeps the
argument order. Failures are reported on stderr and make the command exit 1.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := fingerprintAll(args, c.Fingerprint.Jobs)

		failed := 0
		for i, r := range results {
			if r.err != nil {
				failed++
				fmt.Fprintln(cmd.ErrOrStderr(), r.err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", r.fingerprint, args[i])
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files could not be fingerprinted", failed, len(args))
		}
		return nil
	},
}

func init() {
	flags := fingerprintCommand.Flags()
	flags.IntP("jobs", "j", 0, "files hashed concurrently (0 = GOMAXPROCS)")
	bindPFlagAs(flags, "fingerprint.jobs", "jobs")
}

type fingerprintResult struct {
	fingerprint string
	err         error
}

// fingerprintAll hashes paths with at most jobs calls in flight. The result
// at index i belongs to paths[i].
func fingerprintAll(paths []string, jobs int) []fingerprintResult {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]fingerprintResult, len(paths))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			fp, err := imaging.Fingerprint(path)
			results[i] = fingerprintResult{fingerprint: fp, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
