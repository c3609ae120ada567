package bridge

import (
	"context"

	"github.com/jessevdk/go-flags"
)

// Run parses CLI arguments and drives the bridge until either stream ends.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	ctx := context.Background()
	service := New(options.Endpoint())
	return service.Run(ctx)
}
