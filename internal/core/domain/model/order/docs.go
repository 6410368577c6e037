// Package order contains the DeliveryOrder aggregate: the customer shipment
// that moves through a hub's last-mile workflow. The aggregate owns the order
// status state machine and its timestamp bookkeeping; route membership is
// reflected here through routeID/driverID but the route itself is a separate
// aggregate.
package order
