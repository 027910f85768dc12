// Package mongodb implements the store interfaces on top of the
// official MongoDB driver. Each store owns one collection; every
// operation is a single round-trip, and the driver is solely
// responsible for serializing concurrent writes.
package mongodb
