// ABOUTME: Package documentation for github
// ABOUTME: Describes the gateway contract: text reports in, text reports out

// Package github wraps the GitHub REST API behind five report operations.
//
// Every operation returns a single human-readable string and never an error:
// API failures (not found, rate limit, bad credentials) are converted into
// descriptive text that names the identifier, so the agent can relay the
// limitation instead of failing the turn. Traversal operations issue one API
// call per directory visited, bounded by caller-supplied caps.
//
// InspectRepository and InspectRepositoryFiles walk the tree breadth-first;
// RepositoryTree walks depth-first off a stack. The orders differ on purpose
// and are part of the documented output contract.
package github
