// Package order contains the order aggregate and its value objects: the industry
// enumerations (order type, order source, industry category), the order status and
// priority, line items, and the five vertical-specific payload types attached to
// an order.
//
// The aggregate enforces these invariants:
//   - An order is created through NewOrder (or rehydrated through RestoreOrder)
//   - At most one vertical payload is attached, and its category agrees with the
//     category derived from the order type
//   - Monetary totals are always derived: subtotal is the sum of item totals and
//     total = subtotal + tax + shipping - discount
//   - shipped/delivered timestamps are set exactly once, the first time the
//     corresponding status is reached
package order
