// Package files locates workbooks on disk for the batch and HTTP front ends.
//
// Discovery lists workbooks in a directory and resolves caller-supplied file
// names against a base directory, refusing names that would escape it:
//
//	d := files.NewDiscovery("/data/input", ".xlsx", ".xlsm")
//	path, err := d.Resolve("master.xlsx")
//	all, err := d.FindWorkbooks(".")
package files
