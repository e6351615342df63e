package framework

import (
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// CurlCommand returns a shell command line that repeats a request, for pasting into a
// terminal when investigating a failure.
func CurlCommand(method Method, url string, header http.Header, body []byte) string {
	var b commandBuilder
	b.add("curl", "-i", "-X", string(method))

	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range header[name] {
			b.add("-H", name+": "+value)
		}
	}

	if body != nil {
		b.add("--data", string(body))
	}
	b.add(url)
	return b.String()
}
