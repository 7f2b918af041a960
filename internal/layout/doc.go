// Package layout maps the presentation state to one of the hand-authored
// variants of the sample storefront.
//
// Nothing here computes a layout. [Select] is a lookup over the 27
// (quality, device, era) combinations, and [Frame] returns the fixed device
// frame for a viewport class.
//
// The bad and perfect qualities are swapped by [Resolve] before the lookup:
// picking "bad" on the control panel renders the polished variant and the
// other way round. none is left alone.
package layout
