package config

import "etctl/internal/cdnrepo"

// ApplyDefaults fills the arch default, which depends on the content type.
// The server applies the same defaulting; hard-coding it here keeps
// subsequent runs idempotent.
func ApplyDefaults(params *cdnrepo.Params) {
	if params.Arch == "" {
		if params.ContentType == cdnrepo.ContentTypeDocker {
			params.Arch = cdnrepo.ArchMulti
		} else {
			params.Arch = cdnrepo.ArchDefault
		}
	}
}
