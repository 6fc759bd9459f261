// Package config loads whits.toml.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. built-in defaults
//  2. $XDG_CONFIG_HOME/whits/config.toml
//  3. whits.toml in the working directory (or the file given with --config)
//  4. WHITS_<SECTION>_<KEY> environment variables
//
// # Configuration File Structure
//
//	[source]
//	dir = "pages"
//
//	[output]
//	dir = "dist"
//
//	[render]
//	doctype = "<!DOCTYPE html>"
//	root = "html"
//	rootattributes = { lang = "en" }
//
//	[publish]
//	target = "s3"
//	bucket = "my-site"
//	prefix = "docs/"
//	region = "eu-west-1"
//
//	[serve]
//	host = "localhost"
//	port = 4040
//
//	[log]
//	verbosity = 1
package config
