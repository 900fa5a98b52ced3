// Package interaction implements the Lattice read-dispatch server.
//
// The server owns a registry of cluster handlers keyed by
// (endpoint, cluster) and routes incoming read requests to them. It
// translates handler error kinds into protocol status codes; handlers
// themselves never downgrade or catch errors.
//
// # Read Flow
//
//  1. Resolve the endpoint on the node and the handler in the registry;
//     unknown paths answer with the matching UNSUPPORTED_* status.
//  2. Build an encoder gated on the requester's last-seen data version.
//  3. Invoke the handler. A version match yields a success response with
//     no report frame - zero bytes were encoded.
//
// Reads are synchronous and non-blocking; callers serialize access per
// handler instance.
//
// # Change Collection
//
// Handlers implementing model.ChangeNotifier are polled by
// CollectChanges. Each consumed edge yields at most one pending-change
// record per burst, which callers turn into subscription reports.
package interaction
