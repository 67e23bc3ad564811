package triage

// skillEntry binds a skill tag to the trigger phrases that activate it.
// Entries are kept in a slice rather than a map so extraction walks the
// table in a fixed order, which makes the discovery order of required
// skills deterministic.
type skillEntry struct {
	Tag     string
	Phrases []string
}

// skillKeywords is the static skill-tag table. Tag names must match the
// proficiency keys used in agent records exactly, since the scorer joins on
// tag-name equality.
var skillKeywords = []skillEntry{
	{"VPN_Troubleshooting", []string{"vpn", "virtual private network", "tunnel", "authentication error"}},
	{"Networking", []string{"network", "connectivity", "ping", "switch", "router", "outage", "dns"}},
	{"Hardware_Diagnostics", []string{"hardware", "laptop", "desktop", "boot", "bios", "fan", "overheating", "port", "usb", "monitor", "projector"}},
	{"Laptop_Repair", []string{"laptop", "battery", "charging", "screen", "keyboard", "fan"}},
	{"Microsoft_365", []string{"outlook", "microsoft 365", "m365", "email", "onedrive", "teams"}},
	{"Active_Directory", []string{"active directory", "ad", "account", "user account", "domain", "login", "password reset", "sso", "saml"}},
	{"Database_SQL", []string{"database", "sql server", "query", "backup", "connection timeout"}},
	{"Network_Security", []string{"security", "firewall", "intrusion", "breach", "malicious"}},
	{"Endpoint_Security", []string{"malware", "antivirus", "trojan", "phishing", "security"}},
	{"Cloud_Azure", []string{"azure", "app service", "cloud"}},
	{"Cloud_AWS", []string{"aws", "cloud"}},
	{"Printer_Troubleshooting", []string{"printer", "printing"}},
	{"SharePoint_Online", []string{"sharepoint", "collaboration", "site"}},
	{"Voice_VoIP", []string{"voip", "phone", "call"}},
	{"Web_Server_Apache_Nginx", []string{"website", "web server", "502", "500", "404"}},
	{"Windows_OS", []string{"windows", "desktop", "pc"}},
	{"Mac_OS", []string{"mac", "macos", "macbook"}},
	{"Linux_Administration", []string{"linux", "ubuntu", "samba", "permission"}},
	{"DevOps_CI_CD", []string{"jenkins", "ci/cd"}},
	{"Virtualization_VMware", []string{"vm", "virtual machine", "vmware"}},
	{"API_Troubleshooting", []string{"api"}},
	{"DNS_Configuration", []string{"dns"}},
	{"SSL_Certificates", []string{"ssl", "certificate"}},
	{"Phishing_Analysis", []string{"phishing"}},
	{"SIEM_Logging", []string{"siem", "log"}},
	{"Identity_Management", []string{"identity", "sso"}},
	{"SaaS_Integrations", []string{"saas", "integration"}},
	{"Firewall_Configuration", []string{"firewall"}},
	{"Switch_Configuration", []string{"switch"}},
	{"Routing_Protocols", []string{"routing"}},
	{"Network_Monitoring", []string{"monitoring"}},
	{"Endpoint_Management", []string{"endpoint"}},
	{"PowerShell_Scripting", []string{"powershell"}},
	{"Software_Licensing", []string{"license"}},
	{"Python_Scripting", []string{"python"}},
	{"Kubernetes_Docker", []string{"kubernetes", "docker"}},
	{"ETL_Processes", []string{"etl"}},
	{"Data_Warehousing", []string{"data warehouse"}},
	{"PowerBI_Tableau", []string{"powerbi", "tableau"}},
	{"Cisco_IOS", []string{"cisco"}},
	{"Network_Cabling", []string{"cable", "cabling"}},
}

// priorityTier binds an urgency tier to its trigger phrases and fixed score.
type priorityTier struct {
	Name    string
	Score   int
	Phrases []string
}

// priorityTiers is evaluated top to bottom with short-circuiting, so a text
// matching both a critical and a low phrase always scores critical.
var priorityTiers = []priorityTier{
	{"critical", 10, []string{"critical", "business-critical", "down", "outage", "not working", "failure", "failed", "crash", "urgent", "immediate"}},
	{"high", 8, []string{"high", "security", "breach", "malware", "slow", "performance", "locked", "cannot", "unable", "broken"}},
	{"medium", 5, []string{"medium", "sync", "access", "permission", "configuration"}},
	{"low", 2, []string{"request", "setup", "new user", "license", "standard", "routine"}},
}

// DefaultPriority is returned when no tier phrase matches. It deliberately
// sits above the medium tier (5); changing it changes assignment order.
const DefaultPriority = 6
