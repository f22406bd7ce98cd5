// Package defaults centralizes timeout constants shared across vercmp
// components so server and handler deadlines stay consistent.
package defaults
