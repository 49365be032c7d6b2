package config

// DefaultConfigTemplate is the config.yaml body written by
// `submitkit config init`.
const DefaultConfigTemplate = `# submitkit configuration
#
# Every student field can be overridden per invocation with flags
# (--name, --university, ...) or environment variables (SUBMITKIT_NAME,
# SUBMITKIT_UNIVERSITY, ...). Precedence: flag > env > this file.

student:
  name: ""
  university: ""
  department: ""
  email: ""

repo:
  url: ""

# Ordered list of required paths. A trailing slash marks a directory.
deliverables:
  - agent/
  - docs/architecture.md
  - docs/report.pdf
  - interaction_logs/

# Addresses on the draft's To: line. Replace the placeholders with the
# actual course staff.
email:
  recipients:
    - instructor@example.edu
    - course-ta@example.edu

render:
  # What to do with template fields you have not filled in yet:
  #   keep   leave the placeholder literal in the output (default)
  #   empty  render the empty string
  missing: keep

log:
  timestamps: false
`
