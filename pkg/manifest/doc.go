// Package manifest models the consolidated asset manifest a multi-target web
// build produces and provides cached access to it.
//
// A consolidated manifest is an ordered list of build variants, each scoped
// to a set of browser targets and carrying its own entrypoint → asset lists
// mapping. The build pipeline writes it as JSON, by convention to
// build/client/assets.json:
//
//	[
//	  {
//	    "name": "modern",
//	    "browsers": ["chrome 96", "firefox 94", "safari 15"],
//	    "manifest": {
//	      "entrypoints": {
//	        "main": {
//	          "js":  [{"path": "/assets/main.modern.js", "integrity": "sha384-..."}],
//	          "css": [{"path": "/assets/main.css"}]
//	        }
//	      }
//	    }
//	  },
//	  {"name": "legacy", "manifest": {"entrypoints": {...}}}
//	]
//
// Store caches the decoded document for the life of the process with
// single-flight de-duplication of the initial read, and re-reads only after
// an explicit Invalidate. Source abstracts where the document comes from:
// LocalSource for the conventional on-disk file, S3Source for builds
// published to object storage.
package manifest
