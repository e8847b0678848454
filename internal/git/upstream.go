package git

import (
	"strings"

	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// trackingRef maps the merge ref of a branch to the local ref that tracks it.
// A remote of "." means the upstream is a local branch. Otherwise the
// remote's fetch refspecs decide, falling back to refs/remotes/<remote>/<branch>.
func trackingRef(remote string, merge plumbing.ReferenceName, rc *config.RemoteConfig) plumbing.ReferenceName {
	if remote == "." {
		return merge
	}
	if rc != nil {
		for _, spec := range rc.Fetch {
			if strings.HasPrefix(string(spec), "^") || spec.IsDelete() {
				continue
			}
			if spec.Match(merge) {
				return spec.Dst(merge)
			}
		}
	}
	return plumbing.NewRemoteReferenceName(remote, merge.Short())
}
