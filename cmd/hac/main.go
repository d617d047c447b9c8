// Command hac clusters a distance matrix with single-linkage agglomerative
// clustering and prints the resulting trees and memberships.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
