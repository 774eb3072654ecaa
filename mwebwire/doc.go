// Package mwebwire implements the binary encoding of MWEB transaction
// objects: Input, Output, Kernel, TxBody and Transaction, plus the outer
// Litecoin transaction's MWEB extension envelope (§4.7).
package mwebwire
