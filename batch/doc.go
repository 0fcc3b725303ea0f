// Package batch processes files of necklaces, one necklace per line: the
// separability of every line is computed by a pool of workers, and large
// files are split into chunks and recombined.
package batch
