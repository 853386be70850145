// Package main implements the nexttag CLI tool.
//
// nexttag looks up the highest version tag in the git repository of the
// current directory, proposes the next patch version and, after a y/n
// confirmation, creates that tag and pushes it to the "origin" remote.
//
// Command Usage:
//
//	nexttag
//
// There are no flags. The only input is the answer to the prompt; "y" and
// "yes" (any case) confirm, anything else cancels.
//
// Example session:
//
//	$ nexttag
//	Latest tag: v2.4.9
//	Next version: v2.4.10
//	Do you want to create and push tag v2.4.10? (y/n): y
//	Tag v2.4.10 created successfully
//	Tag v2.4.10 pushed to remote successfully
//
// A repository without tags starts at v0.1.0. Existing tags must have exactly
// three numeric parts (an optional leading "v" is allowed); anything else,
// such as v3.0 or v1.2.3-rc1, aborts with an error before the prompt.
//
// Exit status is 0 when the tag was published or the operator declined, and
// 1 when the latest tag is malformed or git fails to create or push the tag.
package main
