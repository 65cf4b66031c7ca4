//go:build linux || darwin || freebsd

package mgp

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// openProcessImage opens the running process image. A procedure module is
// loaded by the database host with the mgp_* symbols already bound, so they
// resolve from the host executable rather than a library on disk.
func openProcessImage() (uintptr, error) {
	img, err := purego.Dlopen("", purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrHostNotAvailable, err)
	}
	return img, nil
}

// procCallback builds a C-callable trampoline for one registered procedure.
// The host calls it once per source row; the trampoline routes into the Go
// dispatcher with the procedure name bound.
func (h *Host) procCallback(name string) uintptr {
	return purego.NewCallback(func(args ListPtr, graph GraphPtr, result ResultPtr, memory MemoryPtr) uintptr {
		if h.Dispatch != nil {
			h.Dispatch(name, args, graph, result, memory)
		}
		return 0
	})
}

func registerEntryPoints(img uintptr) {
	reg := func(fptr any, name string) {
		purego.RegisterLibFunc(fptr, img, name)
	}

	reg(&mgpValueGetType, "mgp_value_get_type")
	reg(&mgpValueGetBool, "mgp_value_get_bool")
	reg(&mgpValueGetInt, "mgp_value_get_int")
	reg(&mgpValueGetDouble, "mgp_value_get_double")
	reg(&mgpValueGetString, "mgp_value_get_string")
	reg(&mgpValueGetList, "mgp_value_get_list")
	reg(&mgpValueGetMap, "mgp_value_get_map")
	reg(&mgpValueGetVertex, "mgp_value_get_vertex")
	reg(&mgpValueGetEdge, "mgp_value_get_edge")
	reg(&mgpValueGetPath, "mgp_value_get_path")
	reg(&mgpValueGetDate, "mgp_value_get_date")
	reg(&mgpValueGetLocalTime, "mgp_value_get_local_time")
	reg(&mgpValueGetLocalDateTime, "mgp_value_get_local_date_time")
	reg(&mgpValueGetDuration, "mgp_value_get_duration")

	reg(&mgpValueMakeNull, "mgp_value_make_null")
	reg(&mgpValueMakeBool, "mgp_value_make_bool")
	reg(&mgpValueMakeInt, "mgp_value_make_int")
	reg(&mgpValueMakeDouble, "mgp_value_make_double")
	reg(&mgpValueMakeString, "mgp_value_make_string")
	reg(&mgpValueMakeList, "mgp_value_make_list")
	reg(&mgpValueMakeMap, "mgp_value_make_map")
	reg(&mgpValueMakeVertex, "mgp_value_make_vertex")
	reg(&mgpValueMakeEdge, "mgp_value_make_edge")
	reg(&mgpValueMakePath, "mgp_value_make_path")
	reg(&mgpValueMakeDate, "mgp_value_make_date")
	reg(&mgpValueMakeLocalTime, "mgp_value_make_local_time")
	reg(&mgpValueMakeLocalDateTime, "mgp_value_make_local_date_time")
	reg(&mgpValueMakeDuration, "mgp_value_make_duration")
	reg(&mgpValueDestroy, "mgp_value_destroy")

	reg(&mgpListMakeEmpty, "mgp_list_make_empty")
	reg(&mgpListDestroy, "mgp_list_destroy")
	reg(&mgpListSize, "mgp_list_size")
	reg(&mgpListCapacity, "mgp_list_capacity")
	reg(&mgpListAt, "mgp_list_at")
	reg(&mgpListAppend, "mgp_list_append")
	reg(&mgpListAppendExtend, "mgp_list_append_extend")

	reg(&mgpMapMakeEmpty, "mgp_map_make_empty")
	reg(&mgpMapDestroy, "mgp_map_destroy")
	reg(&mgpMapSize, "mgp_map_size")
	reg(&mgpMapAt, "mgp_map_at")
	reg(&mgpMapInsert, "mgp_map_insert")
	reg(&mgpMapIterItems, "mgp_map_iter_items")
	reg(&mgpMapItemsIterGet, "mgp_map_items_iterator_get")
	reg(&mgpMapItemsIterNext, "mgp_map_items_iterator_next")
	reg(&mgpMapItemsIterDestroy, "mgp_map_items_iterator_destroy")
	reg(&mgpMapItemKey, "mgp_map_item_key")
	reg(&mgpMapItemValue, "mgp_map_item_value")

	reg(&mgpVertexGetID, "mgp_vertex_get_id")
	reg(&mgpVertexLabelsCount, "mgp_vertex_labels_count")
	reg(&mgpVertexLabelAt, "mgp_vertex_label_at")
	reg(&mgpVertexGetProperty, "mgp_vertex_get_property")
	reg(&mgpVertexIterProperties, "mgp_vertex_iter_properties")
	reg(&mgpVertexIterInEdges, "mgp_vertex_iter_in_edges")
	reg(&mgpVertexIterOutEdges, "mgp_vertex_iter_out_edges")
	reg(&mgpVertexCopy, "mgp_vertex_copy")
	reg(&mgpVertexDestroy, "mgp_vertex_destroy")

	reg(&mgpEdgeGetType, "mgp_edge_get_type")
	reg(&mgpEdgeGetFrom, "mgp_edge_get_from")
	reg(&mgpEdgeGetTo, "mgp_edge_get_to")
	reg(&mgpEdgeGetProperty, "mgp_edge_get_property")
	reg(&mgpEdgeIterProperties, "mgp_edge_iter_properties")
	reg(&mgpEdgeCopy, "mgp_edge_copy")
	reg(&mgpEdgeDestroy, "mgp_edge_destroy")

	reg(&mgpPathSize, "mgp_path_size")
	reg(&mgpPathVertexAt, "mgp_path_vertex_at")
	reg(&mgpPathEdgeAt, "mgp_path_edge_at")
	reg(&mgpPathCopy, "mgp_path_copy")
	reg(&mgpPathDestroy, "mgp_path_destroy")

	reg(&mgpPropertiesIterGet, "mgp_properties_iterator_get")
	reg(&mgpPropertiesIterNext, "mgp_properties_iterator_next")
	reg(&mgpPropertiesIterDestroy, "mgp_properties_iterator_destroy")
	reg(&mgpEdgesIterGet, "mgp_edges_iterator_get")
	reg(&mgpEdgesIterNext, "mgp_edges_iterator_next")
	reg(&mgpEdgesIterDestroy, "mgp_edges_iterator_destroy")
	reg(&mgpVerticesIterGet, "mgp_vertices_iterator_get")
	reg(&mgpVerticesIterNext, "mgp_vertices_iterator_next")
	reg(&mgpVerticesIterDestroy, "mgp_vertices_iterator_destroy")

	reg(&mgpGraphGetVertexByID, "mgp_graph_get_vertex_by_id")
	reg(&mgpGraphIterVertices, "mgp_graph_iter_vertices")

	reg(&mgpDateFromParameters, "mgp_date_from_parameters")
	reg(&mgpDateGetYear, "mgp_date_get_year")
	reg(&mgpDateGetMonth, "mgp_date_get_month")
	reg(&mgpDateGetDay, "mgp_date_get_day")
	reg(&mgpDateDestroy, "mgp_date_destroy")
	reg(&mgpLocalTimeFromParameters, "mgp_local_time_from_parameters")
	reg(&mgpLocalTimeGetHour, "mgp_local_time_get_hour")
	reg(&mgpLocalTimeGetMinute, "mgp_local_time_get_minute")
	reg(&mgpLocalTimeGetSecond, "mgp_local_time_get_second")
	reg(&mgpLocalTimeGetMillisecond, "mgp_local_time_get_millisecond")
	reg(&mgpLocalTimeGetMicrosecond, "mgp_local_time_get_microsecond")
	reg(&mgpLocalTimeDestroy, "mgp_local_time_destroy")
	reg(&mgpLocalDateTimeFromParameters, "mgp_local_date_time_from_parameters")
	reg(&mgpLocalDateTimeGetYear, "mgp_local_date_time_get_year")
	reg(&mgpLocalDateTimeGetMonth, "mgp_local_date_time_get_month")
	reg(&mgpLocalDateTimeGetDay, "mgp_local_date_time_get_day")
	reg(&mgpLocalDateTimeGetHour, "mgp_local_date_time_get_hour")
	reg(&mgpLocalDateTimeGetMinute, "mgp_local_date_time_get_minute")
	reg(&mgpLocalDateTimeGetSecond, "mgp_local_date_time_get_second")
	reg(&mgpLocalDateTimeGetMillisecond, "mgp_local_date_time_get_millisecond")
	reg(&mgpLocalDateTimeGetMicrosecond, "mgp_local_date_time_get_microsecond")
	reg(&mgpLocalDateTimeDestroy, "mgp_local_date_time_destroy")
	reg(&mgpDurationFromMicroseconds, "mgp_duration_from_microseconds")
	reg(&mgpDurationGetMicroseconds, "mgp_duration_get_microseconds")
	reg(&mgpDurationDestroy, "mgp_duration_destroy")

	reg(&mgpResultNewRecord, "mgp_result_new_record")
	reg(&mgpResultRecordInsert, "mgp_result_record_insert")
	reg(&mgpResultSetErrorMsg, "mgp_result_set_error_msg")
	reg(&mgpModuleAddReadProcedure, "mgp_module_add_read_procedure")
	reg(&mgpProcAddArg, "mgp_proc_add_arg")
	reg(&mgpProcAddOptArg, "mgp_proc_add_opt_arg")
	reg(&mgpProcAddResult, "mgp_proc_add_result")

	reg(&mgpTypeAny, "mgp_type_any")
	reg(&mgpTypeBool, "mgp_type_bool")
	reg(&mgpTypeInt, "mgp_type_int")
	reg(&mgpTypeFloat, "mgp_type_float")
	reg(&mgpTypeString, "mgp_type_string")
	reg(&mgpTypeMap, "mgp_type_map")
	reg(&mgpTypeNode, "mgp_type_node")
	reg(&mgpTypeRelationship, "mgp_type_relationship")
	reg(&mgpTypePath, "mgp_type_path")
	reg(&mgpTypeDate, "mgp_type_date")
	reg(&mgpTypeLocalTime, "mgp_type_local_time")
	reg(&mgpTypeLocalDateTime, "mgp_type_local_date_time")
	reg(&mgpTypeDuration, "mgp_type_duration")
	reg(&mgpTypeList, "mgp_type_list")
	reg(&mgpTypeNullable, "mgp_type_nullable")
}
