// Package nexttag computes and publishes the next patch release tag of a git
// repository.
//
// It provides:
//   - A strict Version model: exactly three numeric dot-separated parts with an
//     optional leading "v". Pre-release and build suffixes are rejected.
//   - A resolver that reads the highest existing tag and proposes the next patch
//     version, or v0.1.0 when the repository has no tags yet.
//   - A publisher that creates the tag locally and pushes it to a remote
//     ("origin" by default), never pushing when creation failed.
//   - An interactive Run that chains the above behind a single y/n prompt.
//
// Git access goes through the small Repository interface. GitCLI shells out to
// the git binary; the gittest package offers an in-memory implementation for
// tests.
//
// Usage Example:
//
//	import (
//	    "context"
//	    "log"
//	    "os"
//
//	    nexttag "github.com/bcomnes/nexttag/pkg"
//	)
//
//	func main() {
//	    meta, err := nexttag.Run(context.Background(), nexttag.Options{
//	        Repo: nexttag.GitCLI{},
//	        In:   os.Stdin,
//	        Out:  os.Stdout,
//	    })
//	    if err != nil {
//	        log.Fatalf("tagging failed: %v", err)
//	    }
//	    log.Println("next tag:", meta.NextTag)
//	}
package nexttag
