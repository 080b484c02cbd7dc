package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "analysis",
			objectType:  "results",
			identifier:  "global",
			paramsKey:   nil,
			expectedKey: "studyplan:analysis:results:global",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "analysis",
			objectType:  "results",
			identifier:  "global",
			paramsKey:   []string{},
			expectedKey: "studyplan:analysis:results:global",
		},
		{
			name:        "with one paramsKey",
			serviceName: "analysis",
			objectType:  "results",
			identifier:  "user",
			paramsKey:   []string{"01HGZ8VNRYXS8QKNJV5GRWPWDQ"},
			expectedKey: "studyplan:analysis:results:user:01HGZ8VNRYXS8QKNJV5GRWPWDQ",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "plan",
			objectType:  "daily",
			identifier:  "xyz",
			paramsKey:   []string{"param1", "param2", "param3"},
			expectedKey: "studyplan:plan:daily:xyz:param1_param2_param3",
		},
		{
			name:        "with paramsKey containing special characters",
			serviceName: "service",
			objectType:  "type",
			identifier:  "id",
			paramsKey:   []string{"param-1", "param_2"},
			expectedKey: "studyplan:service:type:id:param-1_param_2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestAnalysisKeys(t *testing.T) {
	if got := GlobalAnalysesKey(); got != "studyplan:analysis:results:global" {
		t.Errorf("GlobalAnalysesKey() = %v", got)
	}
	if got := UserAnalysesKey("u1"); got != "studyplan:analysis:results:user:u1" {
		t.Errorf("UserAnalysesKey() = %v", got)
	}
	if GlobalAnalysesKey() == UserAnalysesKey("global") {
		t.Error("user key must not collide with the global key")
	}
}
