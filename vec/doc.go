// Package vec implements a growable contiguous vector over raw,
// uninitialized storage from package mem. Element lifetimes are
// explicit: Traits hooks decide how elements are constructed, copied,
// relocated and destroyed, so a vector can hold handles and other
// resource-owning values, not just plain data. Growth doubles capacity
// and relocates live elements with the strongest failure guarantee the
// traits allow.
package vec
