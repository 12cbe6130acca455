// Package domain contains the core entities of the tasker application
// and their validation rules. Domain types are persistence-agnostic;
// stores and handlers depend on this package, never the other way
// around.
package domain
