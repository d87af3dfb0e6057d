package normalize

// Plan proposal fields.
var (
	PlanNumber        = []string{"agent_number", "agentNumber", "number", "unit_number"}
	PlanName          = []string{"name", "title"}
	PlanRationale     = []string{"rationale", "purpose", "Purpose", "summary", "role", "description", "role_description"}
	PlanDescription   = []string{"description"}
	PlanKeyActions    = []string{"key_actions", "keyActions", "Key Actions", "KeyActions", "key_actions_list", "actions"}
	PlanEstimatedTime = []string{"estimated_time", "estimatedTime", "Estimated Time", "EstimatedTime", "duration"}
	PlanKind          = []string{"type"}
)

// Generated unit fields.
var (
	UnitID            = []string{"id", "agent_id"}
	UnitName          = []string{"name", "agent_name"}
	UnitKind          = []string{"type", "agent_type"}
	UnitPurpose       = []string{"purpose"}
	UnitInstructions  = []string{"instructions", "prompt", "content", "body"}
	UnitDemoScript    = []string{"demoScript", "demo_script"}
	UnitBusinessValue = []string{"businessValue", "business_value"}
	UnitTransition    = []string{"transition"}
	UnitRaw           = []string{"raw"}
)

// Keys under which a response object may carry its list of units, and the
// wrapper objects that may hold such a list one level down.
var (
	ListKeys      = []string{"units", "agents"}
	ContainerKeys = []string{"plan", "data", "result", "response"}
)

// Known returns the set of every alias in tables.
func Known(tables ...[]string) map[string]struct{} {
	known := make(map[string]struct{})
	for _, table := range tables {
		for _, key := range table {
			known[key] = struct{}{}
		}
	}
	return known
}

// PlanFields lists every plan alias table, for use with [Known].
func PlanFields() [][]string {
	return [][]string{
		PlanNumber, PlanName, PlanRationale, PlanDescription,
		PlanKeyActions, PlanEstimatedTime, PlanKind,
	}
}
