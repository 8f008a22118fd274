// Package drive contains the consumption driver, the only protocol-safe way
// to fully drain a composed multi-slot range without manual knowledge of the
// deferred/retry contract.
//
// The driver sweeps every slot in a fixed round-robin order: a ready slot has
// its consumer applied and is advanced, an exhausted slot is retired, and a
// deferred slot is left for the next sweep, by which time servicing its
// siblings normally unblocks it. Because evaluation is single-threaded and
// deterministic, a full sweep that makes no progress can never become
// productive later; Run reports ErrStalled instead of spinning.
//
// Collect is the terminal helper that drains every slot into per-slot slices.
package drive
