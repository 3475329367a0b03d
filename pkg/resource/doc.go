/*
Package resource validates the identifiers handed to LVM.

Both privileged authorities parse every name, UUID, size and tag they receive
with this package before touching the host. The parsers are pure and return
typed values so that a validated identifier cannot be confused with raw input:

	name, err := resource.ParseName(req.Name)
	if errors.Is(err, resource.ErrInvalidName) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

Names follow the lvm(8) rules: up to 127 characters from [a-zA-Z0-9+_.-], no
leading hyphen, and none of the prefixes or internal suffixes LVM reserves
for its own sub-volumes. UUIDs use the 6-4-4-4-4-4-6 grouping printed by lvs.

Tags carry free-form text such as the orchestrator's volume name. EscapeTagValue
rewrites any byte outside the tag alphabet as '&' plus two hex digits and
UnescapeTagValue reverses it, so two names never collapse into the same tag:

	tag := "name=" + resource.EscapeTagValue("my volume", resource.MaxTagLength-5)
	// name=my&20volume
*/
package resource
