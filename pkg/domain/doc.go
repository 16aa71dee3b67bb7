// Package domain contains the core entities shared across the application: the
// validated Domain value type, the syntax rules used to accept or reject raw
// candidate strings, and the per-batch AddReport. These types are intentionally
// free of infrastructure concerns so they can be shared across packages.
package domain
