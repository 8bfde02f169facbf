// Package domain contains the core entities of the travel catalog. These
// types describe business concepts (travel packages and their identifiers)
// and are intentionally free of storage and transport concerns so they can
// be shared across packages.
package domain
