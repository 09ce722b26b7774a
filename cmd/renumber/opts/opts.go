package opts

import (
	"github.com/walteh/renumber/pkg/listing"
	"github.com/walteh/renumber/pkg/transfer"
)

// RootOpts holds everything a run needs once the command line is resolved
type RootOpts struct {
	// Source is the absolute, symlink-resolved source directory
	Source string
	// Destination is the absolute, symlink-resolved destination directory
	Destination string
	// Prefix is prepended to every destination name
	Prefix   string
	Listing  listing.Options
	Transfer transfer.Options
}
