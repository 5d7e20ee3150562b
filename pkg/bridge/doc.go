// Package bridge delivers UCI notifications from a chip's worker into the
// host runtime.
//
// A Bridge is built on the worker thread that will use it. It attaches that
// thread to the host runtime once, through an AttachmentToken, and keeps
// the attachment until Close. Class and method handles are resolved lazily
// and cached for the lifetime of the Bridge.
//
// Every notification kind has its own encoder with a fixed argument layout
// (see layout.go). Delivery never retries: a notification the host cannot
// take is logged and dropped.
package bridge
