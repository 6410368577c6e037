// Package route contains the Route aggregate and its owned Stops. A route is
// one vehicle/driver's ordered set of delivery stops for a single date; it
// moves from planning through dispatch to completion and cascades those
// transitions onto its member orders at the application layer.
package route
