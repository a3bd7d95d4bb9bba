// Package config loads and validates the declaration files etctl applies.
//
// A declaration file is YAML listing the CDN repositories to reconcile:
//
//	cdn_repos:
//	  - name: redhat-rhceph-rhceph-4-rhel8
//	    release_type: Primary
//	    content_type: Docker
//	    variants:
//	      - 8Base-RHCEPH-4.0-Tools
//	      - 8Base-RHCEPH-4.1-Tools
//	    packages:
//	      rhceph-container:
//	        - latest
//	        - "{{version}}"
//	        - my-restricted-tag:
//	            variant: 8Base-RHCEPH-4.0-Tools
//
// Loading applies defaults (the arch default depends on the content type)
// and validates every declaration before any remote call is made.
package config
