// Package compliance compares an sshd_config file with expected default
// directive values and writes a JSON report named json_log.json.
//
// # Defaults
//
// Expected values come from a JSON, YAML or TOML mapping of directive to
// value, chosen by file extension. File order is preserved and decides
// report order.
//
// # Report
//
//	{
//	    "message": {
//	        "status": "non-compliant",
//	        "PermitRootLogin": "yes",
//	        "PasswordAuthentication": "no"
//	    }
//	}
//
// Scan reports "non-compliant" when any directive differs from its
// default. It reads the global section only, up to the first Match line. ScanLegacy keeps the older checker's inverted labelling and
// matching rules for consumers that depend on them.
package compliance
