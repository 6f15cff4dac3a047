// Package rotate moves the previous generation of generated files out of
// the way before a new generation is written.
//
// Rotation is two renames:
//
//  1. archive: Root/<backup> becomes Root/<backup>-<timestamp>
//  2. demote: the live output becomes Root/<backup>
//
// Either source may be missing; that only means there was nothing to move.
// Any other failure is returned and the caller must stop. Nothing is ever
// deleted, so after an interrupted run the previous output is still on disk
// under its live name, the backup name, or an archive name.
//
// Two variants share the algorithm:
//
//   - Whole: the live output is a directory owned outright, such as
//     /etc/web-distributor/nginx. Demotion renames the directory and then
//     recreates it empty.
//   - Selective: the live output is a set of files in a shared directory,
//     such as /etc/acme-redirect.d. Demotion moves only the entries accepted
//     by a Selector into a fresh backup directory and leaves the rest alone.
package rotate
