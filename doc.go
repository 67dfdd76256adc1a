/*
Package wibe implements the Boneh–Boyen–Goh (BBG) wildcarded identity-based
encryption (WIBE) scheme over the bn256 pairing.

A sender encrypts to a pattern: an identity vector in which any position may
be left as a wildcard. Any secret key whose identity vector agrees with the
pattern at every non-wildcard position can decrypt. Setting every position of
a pattern decreases it to plain hierarchical identity-based encryption (HIBE);
wildcarding every position yields broadcast encryption bounded only by the
hierarchy depth.

The five operations are Bootstrap, Setup, KeyDerive, Encrypt and Decrypt. They
are pure functions of their arguments and the supplied randomness source; none
of them hold state beyond what is returned to the caller, except MPK's
internal blinding-factor cache (see MPK.blindingFactor).
*/
package wibe
