/*
Package quorum contains the core types shared by the notary-quorum escrow
decision logic: the fixed-length Identity, the Host collaborator interface
and the signed outcome codes returned to the host.

The decision logic itself lives in x/notary and operates on the flat
key=value record defined in the record package. Everything in this module is
deterministic: given the same record bytes and the same host-provided
transaction fields, every node evaluating a transaction computes the same
new record bytes and the same outcome code.
*/
package quorum
