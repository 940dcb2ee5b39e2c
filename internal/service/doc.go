// Package service contains application services that orchestrate multiple
// stores. Authentication-specific services live in the auth subpackage.
package service
