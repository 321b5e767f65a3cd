package git

import (
	"net/url"
	"strings"

	"github.com/bornholm/brief/internal/source"
)

func init() {
	source.Register("git", FromDSN)
}

const (
	paramGitScheme = "gitScheme"
	paramGitBranch = "gitBranch"
	paramPath      = "path"
)

// FromDSN creates a backend from an url like
// git://github.com/org/repo.git?gitBranch=main&path=docs
func FromDSN(dsn *url.URL) (source.Backend, error) {
	repoURL := *dsn
	query := repoURL.Query()

	repoURL.Scheme = "https"
	if query.Has(paramGitScheme) {
		repoURL.Scheme = query.Get(paramGitScheme)
	}

	branch := query.Get(paramGitBranch)
	subPath := strings.Trim(query.Get(paramPath), "/")

	query.Del(paramGitScheme)
	query.Del(paramGitBranch)
	query.Del(paramPath)

	repoURL.RawQuery = query.Encode()

	return New(repoURL.String(), branch, subPath), nil
}
