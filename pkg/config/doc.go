/*
Package config loads renumber's optional settings file and resolves the
paths and prefix a run works with.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |  JSON   | |    HCL    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Reads defaults for prefix, copy, verbose, dry_run, sort and ignore
- Resolves source and destination directories to absolute, symlink-free paths
- Derives the prefix from the source directory when none is given

🔄 Flow:
1. Load picks a parser from the file extension
2. The parser decodes with unknown fields rejected
3. Validate checks the ignore patterns
4. The command line overrides whatever the file set

🔍 Example (HCL, env is exposed to expressions):

	prefix  = "${env.USER}_trip"
	copy    = true
	sort    = true
	ignore  = ["*.tmp", ".DS_Store"]
*/
package config
